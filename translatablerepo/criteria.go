package translatablerepo

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/uptrace/bun"
)

// ByLocale restricts a select to rows in the given locale. The tag is matched
// as stored; callers that accept user input should canonicalize first with
// translatable.NormalizeLocale.
func ByLocale(locale string) repository.SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("?TableAlias.locale = ?", locale)
	}
}

// ForOwner restricts a select to translation rows of one owner. The column is
// the foreign key column of the concrete mapping (e.g. "article_id").
func ForOwner(column string, ownerID any) repository.SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("?TableAlias.? = ?", bun.Ident(column), ownerID)
	}
}

// OrderByLocale applies the conventional deterministic ordering.
func OrderByLocale() repository.SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.OrderExpr("?TableAlias.locale ASC")
	}
}

// WithTranslations loads the named has-many relation of an owner entity,
// ordered by locale so retrieval order is deterministic.
func WithTranslations(relation string) repository.SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Relation(relation, func(rq *bun.SelectQuery) *bun.SelectQuery {
			return rq.OrderExpr("locale ASC")
		})
	}
}

// DeleteForOwner restricts a delete to translation rows of one owner. Most
// mappings will not need it: deleting the owner is expected to cascade.
func DeleteForOwner(column string, ownerID any) repository.DeleteCriteria {
	return func(q *bun.DeleteQuery) *bun.DeleteQuery {
		return q.Where("? = ?", bun.Ident(column), ownerID)
	}
}
