package services

// CanView decides whether a viewer may see an object's bytes: public objects
// are visible to everyone, private objects only to the owning idea's creator.
// An empty viewerID means an unauthenticated caller. Pure, no I/O.
func CanView(viewerID string, isPrivate bool, ideaCreatorID string) bool {
	if !isPrivate {
		return true
	}
	return viewerID != "" && viewerID == ideaCreatorID
}

// MustSign reports whether display must go through a signed URL. Objects are
// written with a private ACL at upload time, so every object kind is fetched
// through a signed URL regardless of the application-level privacy flag;
// correctness of display never depends on that flag being accurate.
func MustSign(isPrivate bool) bool {
	return true
}
