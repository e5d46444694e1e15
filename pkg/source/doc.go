// Package source loads schema documents from a directory or an S3 bucket.
//
//	src, err := source.Open("s3://my-bucket/forms", source.Options{Region: "eu-west-1"})
//	data, err := src.Load(ctx, "signup")
//
// References are relative, slash-separated paths. A reference without an
// extension matches the first of name.yaml, name.yml and name.json.
// References that are absolute or contain ".." are rejected.
package source
