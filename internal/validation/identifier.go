package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// IdentifierPattern определяет допустимый формат имени таблицы или колонки
// Только строчные латинские буквы (a-z), цифры (0-9), нижнее подчеркивание (_)
// Первый символ не цифра, длина: 1-63 символа
var IdentifierPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]{0,62}$`)

// ValidateIdentifier проверяет имя таблицы/колонки перед подстановкой в SQL
func ValidateIdentifier(name string) error {
	if name == "" {
		return fmt.Errorf("identifier cannot be empty")
	}

	if !IdentifierPattern.MatchString(name) {
		return fmt.Errorf("identifier %q can only contain lowercase letters, numbers, and underscores", name)
	}

	return nil
}

// ValidateTable checks name against the identifier format and the allowed set.
// An empty allowed set accepts any well-formed name.
func ValidateTable(name string, allowed map[string]struct{}) error {
	if err := ValidateIdentifier(name); err != nil {
		return err
	}

	if len(allowed) > 0 {
		if _, ok := allowed[name]; !ok {
			return fmt.Errorf("unknown table %q", name)
		}
	}

	return nil
}

// ValidateRecordID проверяет первичный ключ из outbox entry
// Пустой ключ допустим только если allowEmpty
func ValidateRecordID(id string, allowEmpty bool) error {
	if strings.TrimSpace(id) == "" {
		if allowEmpty {
			return nil
		}
		return fmt.Errorf("record id cannot be empty")
	}

	if len(id) > 128 {
		return fmt.Errorf("record id must not exceed 128 characters")
	}

	return nil
}
