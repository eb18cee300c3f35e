package main

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var (
	// ErrAssetNotFound indicates an asset file does not exist under the site root.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrAssetRead indicates an I/O error other than a missing file.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrAssetDecode indicates the profile image could not be decoded.
	ErrAssetDecode = errors.New("failed to decode asset")
)

// Assets holds every file the page needs, read once at startup.
type Assets struct {
	Stylesheet string

	Resume         []byte
	ResumeFileName string

	ProfileImage     []byte
	ProfileImageType string
	ProfileImageSize image.Point
}

// loadAssets reads the stylesheet, résumé and profile image from root.
// The first failure aborts loading; callers treat it as fatal.
func loadAssets(root string, paths AssetPaths) (*Assets, error) {
	css, err := readAsset(root, paths.Stylesheet)
	if err != nil {
		return nil, err
	}

	resume, err := readAsset(root, paths.Resume)
	if err != nil {
		return nil, err
	}

	img, err := readAsset(root, paths.ProfileImage)
	if err != nil {
		return nil, err
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(img))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAssetDecode, paths.ProfileImage, err)
	}
	mtype := mimetype.Detect(img)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, fmt.Errorf("%w: %s: unexpected content type %s", ErrAssetDecode, paths.ProfileImage, mtype)
	}

	return &Assets{
		Stylesheet:       string(css),
		Resume:           resume,
		ResumeFileName:   filepath.Base(paths.Resume),
		ProfileImage:     img,
		ProfileImageType: mtype.String(),
		ProfileImageSize: image.Pt(cfg.Width, cfg.Height),
	}, nil
}

func readAsset(root, rel string) ([]byte, error) {
	path := filepath.Join(root, filepath.FromSlash(rel))
	data, err := os.ReadFile(path) // #nosec G304 -- fixed asset paths
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrAssetRead, path, err)
	}
	return data, nil
}
