// uploader.go - Stores uploaded dress images and records their metadata

package service // Declares the package name

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus" // Structured logging

	"dress-suggestion-backend/models" // Dress theme documents
)

// ImagesRoute is the URL prefix the image directory is served under.
const ImagesRoute = "/images"

const MsgBadFileName = "Invalid file name."

// DressThemeWriter records uploaded images
type DressThemeWriter interface {
	CreateDressTheme(ctx context.Context, theme *models.DressTheme) (string, error)
}

// Publisher sends upload events. A nil Publisher disables them.
type Publisher interface {
	Publish(topic string, payload interface{}) error
}

// UploadEvent is published after a dress theme is recorded
type UploadEvent struct {
	ID         string `json:"id"`
	ImageName  string `json:"imageName"`
	DressImage string `json:"dressImage"`
}

type Uploader struct {
	dir     string
	tmpDir  string // Sibling of dir so partial files are never served
	baseURL string
	store   DressThemeWriter
	pub     Publisher
	topic   string
	log     logrus.FieldLogger
}

// NewUploader creates dir if needed. baseURL is the public origin of this service.
func NewUploader(dir, baseURL string, store DressThemeWriter, pub Publisher, topic string, log logrus.FieldLogger) (*Uploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}
	tmpDir := stagingDir(dir)
	if err := os.MkdirAll(tmpDir, 0o700); err != nil {
		return nil, fmt.Errorf("create staging dir: %w", err)
	}
	return &Uploader{
		dir:     dir,
		tmpDir:  tmpDir,
		baseURL: strings.TrimRight(baseURL, "/"),
		store:   store,
		pub:     pub,
		topic:   topic,
		log:     log,
	}, nil
}

// stagingDir returns the directory next to dir that holds in-progress uploads.
func stagingDir(dir string) string {
	clean := filepath.Clean(dir)
	return filepath.Join(filepath.Dir(clean), "."+filepath.Base(clean)+".partial")
}

// Dir returns the directory uploaded images are written to.
func (u *Uploader) Dir() string { return u.dir }

// CleanFileName strips any directory components from a client-supplied name.
func CleanFileName(name string) (string, bool) {
	name = filepath.Base(filepath.ToSlash(strings.ReplaceAll(name, `\`, "/")))
	if name == "" || name == "." || name == ".." || name == "/" {
		return "", false
	}
	return name, true
}

// ImageURL returns the public URL of a stored image.
func (u *Uploader) ImageURL(name string) string {
	return u.baseURL + ImagesRoute + "/" + url.PathEscape(name)
}

// Save writes src under name (replacing any file of the same name) and inserts
// its metadata. If the insert fails the file is left on disk.
func (u *Uploader) Save(ctx context.Context, name string, src io.Reader) (*models.DressTheme, error) {
	name, ok := CleanFileName(name)
	if !ok {
		return nil, newError(KindInvalid, MsgBadFileName, nil)
	}

	if err := u.writeFile(name, src); err != nil {
		return nil, infraError(err)
	}

	theme := &models.DressTheme{ImageName: name, DressImage: u.ImageURL(name)}
	if _, err := u.store.CreateDressTheme(ctx, theme); err != nil {
		u.log.WithError(err).WithField("file", name).Warn("image stored but metadata insert failed")
		return nil, infraError(err)
	}

	u.publish(theme)
	return theme, nil
}

// writeFile writes to a temp file in the staging directory then renames it into place
func (u *Uploader) writeFile(name string, src io.Reader) error {
	tmp, err := os.CreateTemp(u.tmpDir, "upload-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // No-op after a successful rename

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(u.dir, name)); err != nil {
		return fmt.Errorf("move %s into place: %w", name, err)
	}
	return nil
}

func (u *Uploader) publish(theme *models.DressTheme) {
	if u.pub == nil {
		return
	}
	event := UploadEvent{ID: theme.ID, ImageName: theme.ImageName, DressImage: theme.DressImage}
	if err := u.pub.Publish(u.topic, event); err != nil {
		u.log.WithError(err).WithField("topic", u.topic).Warn("upload event not published")
	}
}
