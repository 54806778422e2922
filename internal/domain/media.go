package domain

import "io"

// MediaFile carries a media payload and its metadata between layers: from
// an admin form into the repository client, and from a multipart request
// into the upload services.
type MediaFile struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}
