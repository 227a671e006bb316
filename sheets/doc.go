// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sheets describes the collection tabs and allocates record identifiers.

# Sheets

Every tab has a fixed column order and the first column is the record id:

  - anniversary: id, title, series, release_date, anniversary_date, notes
  - checklist: id, title, series, owned, condition, notes
  - customs: id, title, base_figure, artist, price, status, notes
  - wishlist: id, title, series, priority, target_price, url, notes

# Identifiers

Identifiers are sequential, zero-padded to three digits:

	sheets.ComputeNextID(rows) // "008" when the largest id is "007"

The first row passed to ComputeNextID is the header and is skipped. Cells
that are not plain digit strings ("+12", "1e3", "abc") are ignored, so a
sheet with no numeric ids starts at "001". Past 999 the id simply grows
("1000"); ids are compared as arbitrary-precision integers and never wrap.

ComputeNextID does not reserve anything. The store enforces uniqueness of
the id column and retries on collision.
*/
package sheets
