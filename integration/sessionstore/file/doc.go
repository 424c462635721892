// Package file persists the session as a small JSON document on local
// disk, the durable equivalent of browser local storage: a raw token
// string plus a serialized user record, always written and cleared
// together.
//
// The default location is <user config dir>/adminkit/session.json,
// overridable with SESSION_FILE_PATH. Writes go through a temp file and
// rename, and the file is created with 0600 permissions since it holds a
// bearer credential.
//
//	repo, err := file.New(file.Config{})
//	if err != nil {
//		return err
//	}
//	mgr := auth.NewManager(repo, svc)
package file
