// file: internals/helpers/upload.go
package helper

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"campuscash_backend/internals/configs"
)

const (
	maxUploadBytes = 8 << 20 // 8 MiB
	maxImageWidth  = 1600
)

var allowedFileExts = map[string]struct{}{
	".pdf": {}, ".doc": {}, ".docx": {}, ".ppt": {}, ".pptx": {},
	".xls": {}, ".xlsx": {}, ".txt": {}, ".zip": {},
	".png": {}, ".jpg": {}, ".jpeg": {}, ".webp": {},
}

// SaveUploadedImage decodes a multipart image, downsizes when oversized and
// re-encodes it as WebP under <UPLOAD_DIR>/<folder>/. Returns the public URL
// path served by the static handler.
func SaveUploadedImage(folder string, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > maxUploadBytes {
		return "", fiber.NewError(fiber.StatusBadRequest, "File too large (max 8 MB)")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "File is not a valid image")
	}
	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	dir := filepath.Join(configs.UploadDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir upload dir: %w", err)
	}

	name := uuid.New().String() + ".webp"
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if err := webp.Encode(dst, img, &webp.Options{Lossless: false, Quality: 85}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	return "/uploads/" + folder + "/" + name, nil
}

// SaveUploadedFile stores a generic attachment (documents etc.) as-is.
func SaveUploadedFile(c *fiber.Ctx, folder string, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > maxUploadBytes {
		return "", fiber.NewError(fiber.StatusBadRequest, "File too large (max 8 MB)")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if _, ok := allowedFileExts[ext]; !ok {
		return "", fiber.NewError(fiber.StatusBadRequest, "File type not allowed")
	}

	dir := filepath.Join(configs.UploadDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir upload dir: %w", err)
	}

	name := uuid.New().String() + ext
	if err := c.SaveFile(fileHeader, filepath.Join(dir, name)); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}

	return "/uploads/" + folder + "/" + name, nil
}
