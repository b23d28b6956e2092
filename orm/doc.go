/*
Package orm provides an easy to use db wrapper

Models are protobuf messages. Each model type is stored in its own bucket,
meaning all keys of that bucket share a common prefix. A model must validate
itself before it is written to the database.
*/
package orm
