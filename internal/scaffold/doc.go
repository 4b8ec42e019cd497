// Package scaffold generates an Android WebView project from the embedded
// template set. It renders the build script, manifest and launcher activity,
// embeds the web assets and produces launcher icons. It powers the
// "paw generate" command.
package scaffold
