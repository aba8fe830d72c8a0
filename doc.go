/*
Package modinfogen generates the module info table of a modular QEMU build.

Each input file is the preprocessed source of one loadable module. Module
metadata is embedded in it as annotation blocks of the form

	MODINFO_START <kind> <value tokens...> MODINFO_END

where kind is one of "arch", "obj", "dep" or "opts". The module name is
the base name of the input file without its extension.

# Architecture pipeline (for developers)

Each element in the pipeline has a distinct sub-package. These are
"glued" together in the [Run] function.
 1. [modinfo]: Scan each input file for annotation blocks and build one
    record per file.
 2. [table]: Stream each record into the generated C table as soon as it
    is built.
 3. [depcheck]: Once all files are processed, check that every "dep"
    names a module that is part of the run.

[config] optionally changes the fixed parts of the generated table.
*/
package modinfogen
