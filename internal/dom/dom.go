// Package dom holds the fixed name-mapping table for the browser stub
// library. The translator consults it after its own container/string
// method table; the mapping is a collaborator concern and deliberately
// dumb: source spelling in, JS idiom out.
package dom

// methodNames maps stub method names to their JS spellings.
var methodNames = map[string]string{
	"get_element_by_id":        "getElementById",
	"get_elements_by_class":    "getElementsByClassName",
	"query_selector":           "querySelector",
	"query_selector_all":       "querySelectorAll",
	"create_element":           "createElement",
	"append_child":             "appendChild",
	"remove_child":             "removeChild",
	"set_attribute":            "setAttribute",
	"get_attribute":            "getAttribute",
	"remove_attribute":         "removeAttribute",
	"add_event_listener":       "addEventListener",
	"remove_event_listener":    "removeEventListener",
	"set_timeout":              "setTimeout",
	"set_interval":             "setInterval",
	"clear_timeout":            "clearTimeout",
	"clear_interval":           "clearInterval",
	"request_animation_frame":  "requestAnimationFrame",
	"prevent_default":          "preventDefault",
	"stop_propagation":         "stopPropagation",
	"dispatch_event":           "dispatchEvent",
	"insert_adjacent_html":     "insertAdjacentHTML",
	"get_bounding_client_rect": "getBoundingClientRect",
}

// propertyNames maps stub property accessor names to JS property names.
var propertyNames = map[string]string{
	"inner_html":       "innerHTML",
	"outer_html":       "outerHTML",
	"inner_text":       "innerText",
	"text_content":     "textContent",
	"class_list":       "classList",
	"class_name":       "className",
	"parent_element":   "parentElement",
	"first_child":      "firstChild",
	"last_child":       "lastChild",
	"next_sibling":     "nextSibling",
	"previous_sibling": "previousSibling",
	"active_element":   "activeElement",
	"local_storage":    "localStorage",
	"session_storage":  "sessionStorage",
}

// Method returns the JS method name for a stub method, if mapped.
func Method(name string) (string, bool) {
	js, ok := methodNames[name]
	return js, ok
}

// Property returns the JS property name for a stub property, if mapped.
func Property(name string) (string, bool) {
	js, ok := propertyNames[name]
	return js, ok
}
