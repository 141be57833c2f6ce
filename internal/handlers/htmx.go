package handlers

import "net/http"

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true" || r.Header.Get("HX-Boosted") == "true"
}

// htmxTarget returns the id of the element the request will be swapped into.
func htmxTarget(r *http.Request) string {
	return r.Header.Get("HX-Target")
}

// htmxTrigger returns the id of the element that triggered the request.
func htmxTrigger(r *http.Request) string {
	return r.Header.Get("HX-Trigger")
}

// retarget makes htmx swap the response into the element with id instead of
// the requested target.
func retarget(w http.ResponseWriter, id, swap string) {
	w.Header().Set("HX-Retarget", "#"+id)
	w.Header().Set("HX-Reswap", swap)
}
