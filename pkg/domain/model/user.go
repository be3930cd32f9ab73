package model

import "github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/types"

// User is a directory user as returned by the Graph users listing. The
// fields come verbatim from the listing and live only for the duration of
// one broadcast run.
type User struct {
	ID                types.UserID `json:"id"`
	DisplayName       string       `json:"displayName"`
	Mail              string       `json:"mail"`
	UserPrincipalName string       `json:"userPrincipalName"`
}
