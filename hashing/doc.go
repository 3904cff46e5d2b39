// Package hashing provides the application-facing driver layer over the
// bcrypt core: a small [Hasher] interface for dependency injection, plus
// the operational conveniences every credential store eventually needs —
// cost-migration detection and hash introspection.
//
// # Architecture
//
// Application code should depend on [Hasher]; [BcryptHasher] is the one
// implementation, configured with a work factor at construction and
// immutable afterwards. Keeping the interface between the application and
// the algorithm means a future work-factor bump (or algorithm change) is
// a construction-site edit, not a call-site hunt.
//
// # Quick start
//
//	h, err := hashing.New(hashing.DefaultOptions()) // cost 12
//	if err != nil { log.Fatal(err) }
//
//	hash, _ := h.Make("my-secret-password")
//	ok, _   := h.Check("my-secret-password", hash) // true
//
// # Cost migration
//
// Call [BcryptHasher.NeedsRehash] on every successful login. It returns
// true when the stored record was produced with a different work factor
// than the current configuration, or with a legacy revision tag.
// Re-hash and persist immediately:
//
//	ok, _ := h.Check(password, storedHash)
//	if ok {
//	    if needs, _ := h.NeedsRehash(storedHash); needs {
//	        newHash, _ := h.Make(password)
//	        persist(userID, newHash)
//	    }
//	}
package hashing
