package entities

import "time"

// SharedGrant gives a non-owning user read access to one challenge. It is
// a side relation off the ownership chain: the grantee never gains write
// authority, and duplicate grants for the same pair are permitted.
type SharedGrant struct {
	ID          int64     `json:"id"`
	ChallengeID int64     `json:"challenge_id"`
	GranteeID   int64     `json:"shared_user_id"`
	SharedAt    time.Time `json:"shared_at"`
}
