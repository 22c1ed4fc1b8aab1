// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Seqrename renames the files in a directory to a sequential, zero-padded
naming scheme.

# Usage

	$ seqrename [flags...] <dir> <base_name>

Files directly inside dir are sorted by name and renamed to base_name
followed by a number and the file's own extension:

	$ seqrename -digits 3 ~/photos holiday
	Renamed 3 files.

gives holiday000.jpg, holiday001.jpg and so on. Directories are left alone
and not descended into. Numbers wider than -digits are written in full.

Nothing is renamed if any new name is already taken by an entry that is not
itself being renamed. Files are first moved to temporary names and then to
their new names, so a directory can be renamed onto its own naming scheme
(for example to shift numbering with -start). If a rename fails, the renames
done before it are undone.

Flags may be given before or after the arguments. -start, -digits and
-dry-run can also be set with the SEQRENAME_START, SEQRENAME_DIGITS and
SEQRENAME_DRY_RUN environment variables.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/seqrename/internal/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
