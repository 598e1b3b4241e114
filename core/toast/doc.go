// Package toast implements the user-visible notification store.
//
// Toasts are pushed newest-first, carry a type (default, success, error, warning, info)
// and dismiss themselves after their duration. Failed API calls are turned into toasts
// with ReportError, which picks a message per error kind and never retries.
//
// # Usage
//
//	toasts := toast.NewStore(cfg.Toast)
//	defer toasts.Close()
//	toasts.Subscribe(toast.LogSubscriber(logg))
//
//	if err := svc.DeletePlayer(ctx, id); err != nil {
//	    toast.ReportError(toasts, err)
//	}
package toast
