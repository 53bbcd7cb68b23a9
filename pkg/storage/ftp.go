package storage

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jlaffaye/ftp"
)

// FTPConfig holds plain/TLS FTP drop configuration
type FTPConfig struct {
	Host      string `yaml:"host"`
	User      string `yaml:"user"`
	Password  string `yaml:"password"`
	RemoteDir string `yaml:"remote_dir"`
	PublicURL string `yaml:"public_url"`
	Secure    bool   `yaml:"secure"`
}

// Configured reports whether every required FTP field is set
func (c FTPConfig) Configured() bool {
	return c.Host != "" && c.User != "" && c.Password != "" && c.RemoteDir != "" && c.PublicURL != ""
}

// FTPUploader pushes files to a remote FTP directory served by a web host
type FTPUploader struct {
	cfg FTPConfig
}

// NewFTPUploader creates an FTP uploader. Connections are short-lived,
// one dial per upload.
func NewFTPUploader(cfg FTPConfig) *FTPUploader {
	return &FTPUploader{cfg: cfg}
}

// Upload stores the file on the FTP host and returns its public URL
func (u *FTPUploader) Upload(ctx context.Context, subdir, filename string, body io.Reader, _ string, _ int64) (string, error) {
	opts := []ftp.DialOption{
		ftp.DialWithContext(ctx),
		ftp.DialWithTimeout(60 * time.Second),
	}
	if u.cfg.Secure {
		opts = append(opts, ftp.DialWithExplicitTLS(&tls.Config{ServerName: u.cfg.Host, MinVersion: tls.VersionTLS12}))
	}

	conn, err := ftp.Dial(u.cfg.Host+":21", opts...)
	if err != nil {
		return "", fmt.Errorf("ftp dial failed: %w", err)
	}
	defer conn.Quit() //nolint:errcheck

	if err := conn.Login(u.cfg.User, u.cfg.Password); err != nil {
		return "", fmt.Errorf("ftp login failed: %w", err)
	}

	remoteDir := u.cfg.RemoteDir
	if subdir != "" {
		remoteDir = remoteDir + "/" + subdir
		// MkdirAll equivalent; the directory usually exists already
		_ = conn.MakeDir(remoteDir)
	}

	if err := conn.Stor(remoteDir+"/"+filename, body); err != nil {
		return "", fmt.Errorf("ftp upload failed: %w", err)
	}

	base := strings.TrimRight(u.cfg.PublicURL, "/")
	if subdir != "" {
		return base + "/" + subdir + "/" + filename, nil
	}
	return base + "/" + filename, nil
}
