package middleware

import (
	"errors"
	"unicode/utf8"
)

// ValidateMessageContent validates chat message content.
func ValidateMessageContent(content string) error {
	if len(content) > 100000 { // ~100KB limit
		return errors.New("message exceeds maximum length")
	}
	if !utf8.ValidString(content) {
		return errors.New("message must be valid UTF-8")
	}
	return nil
}

// ValidateTitle validates an entity title.
func ValidateTitle(title string) error {
	if len(title) > 256 {
		return errors.New("title exceeds maximum length")
	}
	if !utf8.ValidString(title) {
		return errors.New("title must be valid UTF-8")
	}
	return nil
}

// ValidateTags validates a note tag list.
func ValidateTags(tags []string) error {
	if len(tags) > 32 {
		return errors.New("too many tags")
	}
	for _, tag := range tags {
		if len(tag) > 64 {
			return errors.New("tag exceeds maximum length")
		}
		if !utf8.ValidString(tag) {
			return errors.New("tags must be valid UTF-8")
		}
	}
	return nil
}
