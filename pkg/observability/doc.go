/*
Package observability counts what a sync run does.

Metrics live in a private prometheus registry so that several runs (and tests)
never collide on the default one. A one-shot CLI has nobody to scrape it, so the
registry is flushed to a node-exporter textfile at the end of the run.
*/
package observability
