/*
Package scriptsync converts the YAML step scripts authored in the script editor
into the JSON artifacts loaded by the user and agent applications.

A run stamps every step with a stable content-derived uid, derives a translation
key for every Hebrew string, pulls the translations of those keys from Transifex,
splices them into the artifact and pushes the current source strings back.

# Layout

  - pkg/identity: uid assignment.
  - pkg/txkey: translation keys, splicing and the duplicate-key catalog.
  - pkg/syncer: the per-document pipeline.
  - pkg/adapters: Firestore, Transifex, Redis, filesystem and in-memory implementations of pkg/ports.
  - cmd/scriptsync: the command line entry point.

# Usage

	scriptsync editor   # refresh src/ from the editor, then process
	scriptsync local    # process src/ as it is

Translation sync is enabled by setting TRANSIFEX_TOKEN.
*/
package scriptsync
