package olog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"
)

// downloadConcurrency bounds parallel attachment downloads.
const downloadConcurrency = 5

// CreateLogWithFiles creates a new log entry with file attachments in a
// single multipart request.
func (c *Client) CreateLogWithFiles(ctx context.Context, entry NewLogEntry, paths []string) (*Log, error) {
	if err := entry.Validate(); err != nil {
		return nil, fmt.Errorf("invalid log entry: %w", err)
	}

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="logEntry"`)
	header.Set("Content-Type", "application/json")
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if err := json.NewEncoder(part).Encode(entry.payload()); err != nil {
		return nil, fmt.Errorf("failed to encode log entry: %w", err)
	}

	for _, path := range paths {
		if err := addFilePart(writer, "files", path); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	body, err := c.doRequest(ctx, http.MethodPut, "/logs/multipart", entry.params(), buf, writer.FormDataContentType())
	if err != nil {
		return nil, fmt.Errorf("failed to create log with files: %w", err)
	}

	var created Log
	if err := decodeJSON(body, &created); err != nil {
		return nil, err
	}
	c.logger.Info().
		Int64("id", created.ID).
		Int("files", len(paths)).
		Msg("Created log entry with attachments")
	return &created, nil
}

// UploadAttachment uploads a single file to an existing log entry.
func (c *Client) UploadAttachment(ctx context.Context, logID, path, description string) (*Log, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	if err := addFilePart(writer, "file", path); err != nil {
		return nil, err
	}
	if err := writer.WriteField("filename", filepath.Base(path)); err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if err := writer.WriteField("fileMetadataDescription", description); err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	endpoint := "/logs/attachments/" + url.PathEscape(logID)
	body, err := c.doRequest(ctx, http.MethodPost, endpoint, nil, buf, writer.FormDataContentType())
	if err != nil {
		return nil, fmt.Errorf("failed to upload attachment to log %q: %w", logID, err)
	}

	var updated Log
	if err := decodeJSON(body, &updated); err != nil {
		return nil, err
	}
	c.logger.Info().Str("log", logID).Str("file", filepath.Base(path)).Msg("Uploaded attachment")
	return &updated, nil
}

// UploadAttachments uploads multiple files to an existing log entry in one
// request.
func (c *Client) UploadAttachments(ctx context.Context, logID string, paths []string) (*Log, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no files to upload")
	}

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	for _, path := range paths {
		if err := addFilePart(writer, "file", path); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	endpoint := "/logs/attachments-multi/" + url.PathEscape(logID)
	body, err := c.doRequest(ctx, http.MethodPost, endpoint, nil, buf, writer.FormDataContentType())
	if err != nil {
		return nil, fmt.Errorf("failed to upload attachments to log %q: %w", logID, err)
	}

	var updated Log
	if err := decodeJSON(body, &updated); err != nil {
		return nil, err
	}
	c.logger.Info().Str("log", logID).Int("files", len(paths)).Msg("Uploaded attachments")
	return &updated, nil
}

// DownloadAttachment downloads an attachment from a log entry by filename.
func (c *Client) DownloadAttachment(ctx context.Context, logID, filename string) ([]byte, error) {
	endpoint := "/logs/attachments/" + url.PathEscape(logID) + "/" + url.PathEscape(filename)
	data, err := c.doRequest(ctx, http.MethodGet, endpoint, nil, nil, "")
	if err != nil {
		return nil, fmt.Errorf("failed to download attachment %q from log %q: %w", filename, logID, err)
	}
	return data, nil
}

// SaveAttachment downloads an attachment and writes it to savePath, creating
// parent directories as needed.
func (c *Client) SaveAttachment(ctx context.Context, logID, filename, savePath string) error {
	data, err := c.DownloadAttachment(ctx, logID, filename)
	if err != nil {
		return err
	}
	return writeFile(savePath, data)
}

// DownloadAttachmentByID downloads an attachment by its ID.
func (c *Client) DownloadAttachmentByID(ctx context.Context, attachmentID string) ([]byte, error) {
	data, err := c.doRequest(ctx, http.MethodGet, "/attachment/"+url.PathEscape(attachmentID), nil, nil, "")
	if err != nil {
		return nil, fmt.Errorf("failed to download attachment %q: %w", attachmentID, err)
	}
	return data, nil
}

// SaveAttachmentByID downloads an attachment by ID and writes it to savePath.
func (c *Client) SaveAttachmentByID(ctx context.Context, attachmentID, savePath string) error {
	data, err := c.DownloadAttachmentByID(ctx, attachmentID)
	if err != nil {
		return err
	}
	return writeFile(savePath, data)
}

// DownloadAllAttachments downloads every attachment of a log entry into dir,
// fetching concurrently with bounded parallelism. It returns the paths of
// the files written.
func (c *Client) DownloadAllAttachments(ctx context.Context, entry Log, dir string) ([]string, error) {
	if len(entry.Attachments) == 0 {
		return nil, nil
	}

	logID := fmt.Sprintf("%d", entry.ID)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(downloadConcurrency)

	var mu sync.Mutex
	var saved []string
	var failed int

	for _, attachment := range entry.Attachments {
		attachment := attachment
		g.Go(func() error {
			savePath := filepath.Join(dir, attachment.Filename)
			if err := c.SaveAttachment(ctx, logID, attachment.Filename, savePath); err != nil {
				c.logger.Warn().
					Err(err).
					Str("log", logID).
					Str("file", attachment.Filename).
					Msg("Failed to download attachment")
				mu.Lock()
				failed++
				mu.Unlock()
				// Continue downloading the remaining attachments
				return nil
			}
			mu.Lock()
			saved = append(saved, savePath)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return saved, err
	}
	if failed > 0 {
		return saved, fmt.Errorf("failed to download %d of %d attachments", failed, len(entry.Attachments))
	}
	return saved, nil
}

// addFilePart streams a file into the multipart body with its sniffed MIME
// type.
func addFilePart(writer *multipart.Writer, field, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open attachment %q: %w", path, err)
	}
	defer file.Close()

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filepath.Base(path)))
	header.Set("Content-Type", mimeType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to read attachment %q: %w", path, err)
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %q: %w", path, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}
