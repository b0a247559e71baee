package repo

import (
	"bandquiz/src/core/domain"
)

func notFound(resource string) error {
	return domain.NewNotFoundError(resource)
}

// mapWriteError converts constraint violations raised by an insert into
// domain errors. existsMsg describes the unique violation; parents maps a
// foreign key constraint name to the input field it guards.
func mapWriteError(err error, existsMsg string, parents map[string]string) error {
	switch {
	case isUniqueViolation(err):
		return domain.NewAlreadyExistsError(existsMsg)
	case isForeignKeyViolation(err):
		_, constraint := pgErrorCode(err)
		if field, ok := parents[constraint]; ok {
			return domain.NewValidationError(field, "referenced record does not exist")
		}
		return domain.NewValidationError("", "referenced record does not exist")
	default:
		return err
	}
}
