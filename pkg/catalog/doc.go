/*
Package catalog holds the registry of pattern demonstrations and the manifest
describing them.

The registry maps a pattern name to its Demo function; the manifest carries
the human-facing metadata (category, summary, a markdown write-up) and ships
embedded in the binary as YAML. The two are intentionally separate: hosts can
register extra demos without touching the manifest, and presentation code can
read the manifest without being able to run anything.
*/
package catalog
