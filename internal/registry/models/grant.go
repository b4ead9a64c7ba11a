package models

import (
	id "docregistry/pkg/domain"
)

// AccessGrant is one row of the access control matrix: a boolean "may view"
// flag for a (document, viewer) pair. At most one row per pair exists; a
// missing row reads as false.
type AccessGrant struct {
	DocumentID id.DocumentID `json:"document_id"`
	Viewer     id.Identity   `json:"viewer"`
	MayView    bool          `json:"may_view"`
}

// Statistics is the always-available registry summary. TotalDocuments is the
// counter value, which counts documents ever created and is unaffected by
// deletes.
type Statistics struct {
	TotalDocuments uint64      `json:"total_documents"`
	Administrator  id.Identity `json:"administrator"`
	CurrentHeight  uint64      `json:"current_height"`
	AuditEvents    int         `json:"audit_events"`
}
