package helpers

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const PhotoURLPrefix = "/api/photos/"

func GetFileType(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext != "" {
		return ext[1:]
	}
	return "unknown"
}

func IsImage(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mediaType, "image/")
}

// PhotoKey names a new blob for an item photo. The random part keeps an old
// photo and its replacement from sharing a key.
func PhotoKey(itemID uint, fileName string) string {
	key := fmt.Sprintf("items/%d/%s", itemID, uuid.NewString())
	if fileType := GetFileType(fileName); fileType != "unknown" {
		key += "." + fileType
	}
	return key
}

func PhotoURL(key string) string {
	return PhotoURLPrefix + key
}

// PhotoKeyFromURL reverses PhotoURL and returns "" for anything else.
func PhotoKeyFromURL(url string) string {
	if !strings.HasPrefix(url, PhotoURLPrefix) {
		return ""
	}
	return strings.TrimPrefix(url, PhotoURLPrefix)
}
