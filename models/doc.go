// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

One request type per sheet, decoded from the client form:

  - AnniversaryRequest: title, series, release_date, anniversary_date, notes
  - ChecklistRequest: title, series, owned, condition, notes
  - CustomsRequest: title, base_figure, artist, price, status, notes
  - WishlistRequest: title, series, priority, target_price, url, notes
  - QueryRequest: sql, args

Every sheet request may carry an explicit id. Cells returns the row in the
sheet's column order without the id. Booleans become TRUE/FALSE and missing
numbers become empty cells, the way a spreadsheet shows them.

# Response Types

Every response has a success flag:

  - AppendResponse: sheet, id
  - NextIDResponse: sheet, next_id
  - RangeResponse: sheet, header, rows
  - PingResponse, SchemaResponse, QueryResponse: database checks
  - NewsResponse: source, category, items
  - ErrorResponse: error, message
*/
package models
