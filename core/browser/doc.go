// Package browser opens the user's default web browser at the served site.
//
// # Components
//
//   - Open: the platform mechanism, shelling out to open, xdg-open or
//     cmd /c start depending on the operating system.
//   - Opener: a background task that waits for the server to be reachable,
//     applies a small courtesy delay, and calls Open exactly once.
//
// # Contract
//
// The opener is strictly best effort. It is never joined, its failures are
// logged at debug level only, and the server must behave identically whether
// or not a browser could be opened.
//
// # Usage
//
//	opener := browser.NewOpener(cfg.Browser, srv.URL(), srv.Ready(), log)
//	go opener.Run(ctx)
package browser
