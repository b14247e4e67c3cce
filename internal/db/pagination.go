// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

const (
	defaultPageSize uint64 = 100
	maxPageSize     uint64 = 500
)

// Page is a LIMIT/OFFSET window. Pages are 1-based, non positive pages and
// sizes select the first page and the default size.
type Page struct {
	Limit  uint64
	Offset uint64
}

func Paginate(page, size int64) Page {
	p := Page{Limit: defaultPageSize}

	if size > 0 {
		p.Limit = min(uint64(size), maxPageSize)
	}

	if page > 1 {
		p.Offset = uint64(page-1) * p.Limit
	}

	return p
}
