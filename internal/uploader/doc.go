// Package uploader transfers completed export artifacts to an external HTTP
// object store. Objects are written with compliance-mode object-lock headers
// so the destination can enforce the configured retention; the core itself
// never deletes or rewrites anything it uploaded.
package uploader
