package cli

import (
	"context"
	"fmt"
	"log"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/ooakt0/fyi-bolt-sub000/internal/client/api"
	"github.com/ooakt0/fyi-bolt-sub000/internal/client/transfer"
)

func (a *App) readLocalFile(path string) ([]byte, string, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	if int64(len(payload)) > a.config.MaxFileSizeBytes {
		return nil, "", fmt.Errorf("file exceeds the %d byte limit", a.config.MaxFileSizeBytes)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = http.DetectContentType(payload)
	}
	return payload, contentType, nil
}

// UploadFile runs the three-step document flow: request a presigned URL, PUT
// the bytes straight to storage, then record the metadata. The steps are not
// transactional; a failed record leaves an orphaned object for the operator
// to reconcile.
func (a *App) UploadFile(ctx context.Context, ideaID string) {
	localPath, err := GetSimpleText(a.reader, "Enter local file path", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	category, err := GetSimpleText(a.reader, "Enter category (validation_report/pitch_deck/video/ai_image/market_research/user_upload)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	payload, contentType, err := a.readLocalFile(localPath)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	target, err := a.api.RequestFileUploadURL(ctx, ideaID, filepath.Base(localPath), category, contentType)
	if err != nil {
		log.Printf("Upload URL request unsuccessful: %s", err.Error())
		return
	}

	if err := transfer.PutObject(ctx, a.transport, target.UploadURL, payload, contentType); err != nil {
		log.Printf("Upload unsuccessful: %s", err.Error())
		return
	}

	file, err := a.api.RecordFile(ctx, ideaID, target.ObjectURL, category)
	if err != nil {
		log.Printf("Upload succeeded but recording metadata failed: %s", err.Error())
		return
	}

	fmt.Printf("Uploaded %s as %s (%s)\n", file.DisplayName, file.ID, file.FileType)
}

func (a *App) UploadImage(ctx context.Context, ideaID string) {
	localPath, err := GetSimpleText(a.reader, "Enter local image path", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	caption, err := GetSimpleText(a.reader, "Enter caption (optional)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	private, err := GetSimpleText(a.reader, "Private? (y/N)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	payload, contentType, err := a.readLocalFile(localPath)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	target, err := a.api.RequestImageUploadURL(ctx, ideaID, filepath.Base(localPath), contentType)
	if err != nil {
		log.Printf("Upload URL request unsuccessful: %s", err.Error())
		return
	}

	if err := transfer.PutObject(ctx, a.transport, target.UploadURL, payload, contentType); err != nil {
		log.Printf("Upload unsuccessful: %s", err.Error())
		return
	}

	image, err := a.api.RecordImage(ctx, ideaID, api.RecordImageRequest{
		ImageURL:    target.ObjectURL,
		ContentType: contentType,
		SizeInBytes: int64(len(payload)),
		IsPrivate:   private == "y" || private == "Y",
		Caption:     caption,
	})
	if err != nil {
		log.Printf("Upload succeeded but recording metadata failed: %s", err.Error())
		return
	}

	fmt.Printf("Uploaded image %s (%s)\n", image.FileName, image.ID)
}
