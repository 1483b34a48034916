package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"remote-launcher/internal/models"

	"github.com/dustin/go-humanize"
	"github.com/h2non/filetype"
)

const defaultUploadType = "application/octet-stream"

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// AddApplication uploads file as the multipart field "file".
func (s *AppService) AddApplication(ctx context.Context, file models.FileRef) error {
	if file.Open == nil {
		return requestFailed(http.MethodPost, PathAddApp, fmt.Errorf("file %q has no source", file.Name))
	}

	rc, err := file.Open()
	if err != nil {
		return requestFailed(http.MethodPost, PathAddApp, err)
	}
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return requestFailed(http.MethodPost, PathAddApp, err)
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreatePart(partHeader(file.Name, detectContentType(data)))
	if err != nil {
		return requestFailed(http.MethodPost, PathAddApp, err)
	}
	if _, err := part.Write(data); err != nil {
		return requestFailed(http.MethodPost, PathAddApp, err)
	}
	if err := form.Close(); err != nil {
		return requestFailed(http.MethodPost, PathAddApp, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+PathAddApp, &buf)
	if err != nil {
		return requestFailed(http.MethodPost, PathAddApp, err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	s.logger.Debug("AppService", "uploading application", map[string]interface{}{
		"file": file.Name,
		"size": humanize.Bytes(uint64(len(data))),
	})

	_, err = s.do(req, PathAddApp)
	return err
}

func partHeader(filename, contentType string) textproto.MIMEHeader {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, uploadField, quoteEscaper.Replace(filename)))
	h.Set("Content-Type", contentType)
	return h
}

// detectContentType sniffs the upload's magic bytes. Unknown content is sent
// as an opaque stream; nothing is rejected.
func detectContentType(data []byte) string {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown || kind.MIME.Value == "" {
		return defaultUploadType
	}
	return kind.MIME.Value
}
