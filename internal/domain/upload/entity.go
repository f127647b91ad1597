package upload

// StoredFile describes an uploaded object and where clients can fetch it.
type StoredFile struct {
	Key         string
	URL         string
	FileName    string
	ContentType string
	Size        int64
}
