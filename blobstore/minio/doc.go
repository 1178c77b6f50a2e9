// Package minio provides a blobstore.Store implementation using the MinIO client.
//
// MinIO is a high-performance, S3-compatible object storage system. This package
// uses the official MinIO Go client library for compatibility with MinIO
// and other S3-compatible storage systems like Ceph, SeaweedFS, and Garage.
//
// # Basic Usage
//
//	store, err := minio.Dial(minio.Options{
//	    Endpoint:  "localhost:9000",
//	    AccessKey: "minioadmin",
//	    SecretKey: "minioadmin",
//	}, "my-bucket", "units/")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	reg, err := unitgo.New(unitgo.WithStore(store))
//
// An existing *minio.Client can be wrapped with NewStore.
package minio
