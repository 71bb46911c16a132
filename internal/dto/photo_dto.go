package dto

import "io"

type PhotoUploadDTO struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}
