package interfaces

import "context"

// IAnchorClient forwards content hashes to the external blockchain
// middleware. Anchoring is a fire-and-forget durability enhancer: errors are
// for logging only and must never propagate into the upload path.
type IAnchorClient interface {
	AnchorMilestone(ctx context.Context, milestoneID, projectID string, sha256s []string) error
	AnchorProperty(ctx context.Context, propertyID, projectID string, sha256s []string) error
	AnchorDocument(ctx context.Context, documentID string, sha256 string) error
}
