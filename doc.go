// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fieldmatch

/*
Package fieldmatch selects fields in a Singer catalog using gitignore-like
include/exclude patterns.

Every select-able field of the catalog is flattened to a slash-separated path
("stream/field", nested fields keep their intermediate "properties" segments),
patterns are applied to each path in order, and the catalog is partitioned
into matched and unmatched fields.

Basic flow:
  - load catalog (`LoadCatalogFile`)
  - parse patterns from text (`ParsePatterns`), file (`LoadPatternsFile`),
    or stream shorthand (`StreamPatterns`); default is a single `**`
  - match (`MatchCatalog`)
  - check for unused patterns (`Result.CheckUnused`)
  - render output (`ProduceMatched` / `ProduceUnmatched` / `ProduceCatalog`)

Pattern application is polarity-gated rather than plain "last match wins":
a pattern takes effect only when its negation flag equals the current
selection state, so a positive pattern can only flip unselected to selected
and a `!` pattern can only flip selected back. This intentionally preserves
the toggling behavior of existing pattern files; see MatchPath.
*/
package fieldmatch
