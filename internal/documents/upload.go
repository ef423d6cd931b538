package documents

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/JaimeStill/dpi-lab/internal/resolution"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

const pdfType = "application/pdf"

// formOverhead is the slack allowed on top of the file for the other
// multipart fields and boundaries.
const formOverhead = 1 << 20

// ReadUpload decodes a multipart upload into a CreateCommand. The form
// carries the file under "file" and optionally a display "name" and the
// starting "dpi" of the pages. PDFs are opened to count their pages.
func ReadUpload(w http.ResponseWriter, r *http.Request, limit int64) (CreateCommand, error) {
	r.Body = http.MaxBytesReader(w, r.Body, limit+formOverhead)
	if err := r.ParseMultipartForm(limit); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return CreateCommand{}, ErrFileTooLarge
		}
		return CreateCommand{}, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return CreateCommand{}, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	defer file.Close()

	if header.Size > limit {
		return CreateCommand{}, ErrFileTooLarge
	}

	data, err := readAll(file, header.Size)
	if err != nil {
		return CreateCommand{}, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	cmd := CreateCommand{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Filename:    header.Filename,
		ContentType: contentType(header.Header.Get("Content-Type"), data),
		Data:        data,
	}
	if cmd.Name == "" {
		cmd.Name = header.Filename
	}

	if v := r.FormValue("dpi"); v != "" {
		if cmd.DPI, err = resolution.Parse(v); err != nil {
			return CreateCommand{}, fmt.Errorf("dpi: %w", err)
		}
	}

	if cmd.ContentType == pdfType {
		n, err := api.PageCount(bytes.NewReader(data), model.NewDefaultConfiguration())
		if err != nil {
			return CreateCommand{}, fmt.Errorf("%w: %v", ErrInvalidFile, err)
		}
		cmd.PageCount = &n
	}

	return cmd, nil
}

func readAll(file multipart.File, size int64) ([]byte, error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(file, data); err != nil {
		return nil, err
	}
	return data, nil
}

// contentType trusts the part header unless it is missing or generic.
func contentType(declared string, data []byte) string {
	if declared == "" || declared == "application/octet-stream" {
		return http.DetectContentType(data)
	}
	return declared
}
