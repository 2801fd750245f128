package services

import (
	"errors"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/Nikhilesh-cheepu/kiik69-sub000/entity"
	"github.com/Nikhilesh-cheepu/kiik69-sub000/pkg/upload"
	"gorm.io/gorm"
)

// AssetService owns the pieces of the asset registry that go beyond plain
// CRUD: transactional delete with disk cleanup, the stats overview and the
// import of files already sitting on disk.
type AssetService struct {
	DB   *gorm.DB
	Root string // upload root the import walks
}

func NewAssetService(db *gorm.DB, root string) *AssetService {
	return &AssetService{DB: db, Root: root}
}

// Delete removes the row first (transactionally), then unlinks the file. A
// crash in between strands at worst an orphan file on disk, never a DB row
// pointing at nothing. A missing file is not an error.
func (s *AssetService) Delete(id uint) error {
	var asset entity.Asset
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&asset, id).Error; err != nil {
			return err
		}
		return tx.Delete(&asset).Error
	})
	if err != nil {
		return err
	}

	if asset.FilePath != "" {
		if err := os.Remove(asset.FilePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

type AssetStats struct {
	Total      int64            `json:"total"`
	TotalBytes int64            `json:"total_bytes"`
	Featured   int64            `json:"featured"`
	Public     int64            `json:"public"`
	ByCategory map[string]int64 `json:"by_category"`
	ByType     map[string]int64 `json:"by_type"`
}

func (s *AssetService) Stats() (*AssetStats, error) {
	stats := &AssetStats{
		ByCategory: map[string]int64{},
		ByType:     map[string]int64{},
	}

	m := s.DB.Model(&entity.Asset{})
	if err := m.Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	var size *int64
	if err := s.DB.Model(&entity.Asset{}).Select("sum(file_size)").Scan(&size).Error; err != nil {
		return nil, err
	}
	if size != nil {
		stats.TotalBytes = *size
	}
	if err := s.DB.Model(&entity.Asset{}).Where("is_featured = ?", true).Count(&stats.Featured).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&entity.Asset{}).Where("is_public = ?", true).Count(&stats.Public).Error; err != nil {
		return nil, err
	}

	type bucket struct {
		Key   string
		Count int64
	}
	var byCat []bucket
	if err := s.DB.Model(&entity.Asset{}).
		Select("category as key, count(*) as count").
		Group("category").Scan(&byCat).Error; err != nil {
		return nil, err
	}
	for _, b := range byCat {
		stats.ByCategory[b.Key] = b.Count
	}
	var byType []bucket
	if err := s.DB.Model(&entity.Asset{}).
		Select("file_type as key, count(*) as count").
		Group("file_type").Scan(&byType).Error; err != nil {
		return nil, err
	}
	for _, b := range byType {
		stats.ByType[b.Key] = b.Count
	}
	return stats, nil
}

type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Files    []string `json:"files"`
}

// ImportExisting walks the upload root and registers every file not already
// present (matched by exact file_path). Category and description are
// inferred from the parent folder. The walk is synchronous: the counts in
// the result are exact, not a snapshot racing pending inserts.
func (s *AssetService) ImportExisting() (*ImportResult, error) {
	result := &ImportResult{Files: []string{}}

	err := filepath.WalkDir(s.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}

		var count int64
		if err := s.DB.Model(&entity.Asset{}).Where("file_path = ?", path).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			result.Skipped++
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		folder := filepath.Base(filepath.Dir(path))
		asset := entity.Asset{
			Filename:     d.Name(),
			OriginalName: d.Name(),
			FilePath:     path,
			FileURL:      "/" + filepath.ToSlash(path),
			FileType:     upload.DetectKind(d.Name()),
			Category:     folder,
			FileSize:     info.Size(),
			MimeType:     mime.TypeByExtension(strings.ToLower(filepath.Ext(d.Name()))),
			Description:  "Imported from " + folder,
			IsPublic:     true,
		}
		if err := s.DB.Create(&asset).Error; err != nil {
			return err
		}
		result.Imported++
		result.Files = append(result.Files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
