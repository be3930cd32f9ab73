package model

import "github.com/m-mizutani/goerr/v2"

// Error tags classifying failures along the broadcast pipeline
var (
	// ErrTagAuth marks token acquisition failures; fatal to a whole
	// broadcast run
	ErrTagAuth = goerr.NewTag("auth")

	// ErrTagUpstream marks non-success Graph responses; fatal during
	// directory listing, per-user elsewhere
	ErrTagUpstream = goerr.NewTag("upstream")

	// ErrTagChatResolution marks failures to create or locate a 1:1 chat;
	// recorded as that user's failure only
	ErrTagChatResolution = goerr.NewTag("chat_resolution")
)

// Sentinel errors for domain operations
var (
	ErrMemberNotFound       = goerr.New("member not found in conversation")
	ErrBroadcastRunNotFound = goerr.New("broadcast run not found")
)
