/*
Package ports defines the driven ports (interfaces) of the sync driver.

These interfaces decouple the identity and translation pipeline from the remote
editor, the local working copy and the translation vendor, so each can be replaced
by an in-memory implementation in tests or dry runs.

# Key Interfaces

  - DocumentSource: Fetches raw script definitions from the remote editor.
  - Workspace: Reads and writes the local working copy and the output artifacts.
  - TranslationVendor: Pulls translated strings and pushes source strings.
  - TranslationCache: Optionally caches pulled translations between runs.
*/
package ports
