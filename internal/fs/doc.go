// Package fs provides the file system abstraction behind blobstore.LocalStore.
//
//   - [LocalFS]: production implementation using the os package
//   - [FaultyFS]: test wrapper that injects write, sync, close and rename errors
//
// Tests can inject a [FaultyFS] to check that a failed write never replaces
// an existing snapshot:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule("units.snap", fs.Fault{FailAfterBytes: -1, FailOnSync: true})
//	store := blobstore.NewLocalStoreFS(dir, ffs)
//
// Operations take no context.Context. Local file system calls are not
// interruptible at the syscall level; blobstore.Store carries the context.
package fs
