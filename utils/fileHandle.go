package utils

import (
	"fmt"
	"io"
	"lms/config"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SaveUploadedFile stores an uploaded avatar and returns its public URL.
// Only image uploads are accepted, matching the intake contract.
func SaveUploadedFile(file *multipart.FileHeader, destDir string) (string, error) {
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return "", fmt.Errorf("only images are allowed")
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	// Timestamped filename so replacements never collide
	ext := filepath.Ext(file.Filename)
	newFilename := time.Now().Format("20060102150405.000000") + ext
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return GetFileURL(newFilename), nil
}

func GetFileURL(fileName string) string {
	if fileName == "" {
		return ""
	}
	return config.AppConfig.BaseURL + "/uploads/" + fileName
}
