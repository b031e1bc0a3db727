package repository

import (
	"strings"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching term anywhere in a value,
// with LIKE wildcards in term taken literally.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// imageLinkInUse reports whether any venue or artist still points at link.
func imageLinkInUse(db *gorm.DB, link string) (bool, error) {
	var refs int64
	err := db.Raw(
		"SELECT (SELECT COUNT(*) FROM venue WHERE image_link = ?) + (SELECT COUNT(*) FROM artist WHERE image_link = ?)",
		link, link,
	).Scan(&refs).Error
	return refs > 0, err
}
