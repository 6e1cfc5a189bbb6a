package helpers

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const (
	ProfilePictureFolder    = "profile-pictures"
	BackgroundPictureFolder = "background-pictures"
)

func StringTrim(s string) string {
	return strings.TrimSpace(s)
}

// UploadImage pushes one multipart file to Cloudinary and returns the hosted
// secure URL.
func UploadImage(ctx context.Context, cld *cloudinary.Cloudinary, fileHeader *multipart.FileHeader, folder string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %v", err)
	}
	defer file.Close()

	uploadResult, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: folder,
		Tags:   []string{"profiled-app"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image %s: %v", fileHeader.Filename, err)
	}

	return uploadResult.SecureURL, nil
}
