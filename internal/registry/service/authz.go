package service

import (
	"docregistry/internal/registry/models"
	id "docregistry/pkg/domain"
)

// CanView is the read authorization rule: a viewer may read a document if an
// explicit grant row for the pair is true, the viewer is the current
// custodian, or the viewer is the distinguished administrator.
//
// Pure function of (record, grant flag, viewer, administrator) so the rule is
// testable independently of storage.
func CanView(doc *models.Document, granted bool, viewer, administrator id.Identity) bool {
	if doc == nil {
		return false
	}
	if granted {
		return true
	}
	if doc.IsCustodiedBy(viewer) {
		return true
	}
	return !administrator.IsNil() && viewer == administrator
}
