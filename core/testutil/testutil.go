// Package testutil extends the stock testing helpers with the subset
// assertions the API tests lean on.
package testutil

import (
	"encoding/json"
	"net/http/httptest"
	"reflect"
	"testing"
)

// AssertMapContains asserts actual contains all keys and values from expected.
func AssertMapContains(t *testing.T, actual, expected map[string]interface{}) {
	t.Helper()
	for k, want := range expected {
		got, ok := actual[k]
		if !ok {
			t.Errorf("missing key %q in %v", k, actual)
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("key %q = %v, want %v", k, got, want)
		}
	}
}

// AssertListContains asserts actual contains all values from expected.
func AssertListContains(t *testing.T, actual, expected []interface{}) {
	t.Helper()
	for _, want := range expected {
		found := false
		for _, got := range actual {
			if reflect.DeepEqual(got, want) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%v does not contain %v", actual, want)
		}
	}
}

// mapContains reports whether actual contains all of expected, without
// failing the test. Used by AssertMapListContains.
func mapContains(actual, expected map[string]interface{}) bool {
	for k, want := range expected {
		got, ok := actual[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

// AssertMapListContains asserts that a list of maps contains at least one
// map containing expected.
func AssertMapListContains(t *testing.T, actual []map[string]interface{}, expected map[string]interface{}) {
	t.Helper()
	for _, m := range actual {
		if mapContains(m, expected) {
			return
		}
	}
	t.Errorf("%v does not contain %v", actual, expected)
}

// AssertJSONContains asserts the response has one of the given status codes
// (200 and 201 when none are given) and a JSON body that contains data (for
// maps and lists) or equals it otherwise.
func AssertJSONContains(t *testing.T, rec *httptest.ResponseRecorder, data interface{}, statusCodes ...int) {
	t.Helper()
	if len(statusCodes) == 0 {
		statusCodes = []int{200, 201}
	}
	statusOK := false
	for _, code := range statusCodes {
		if rec.Code == code {
			statusOK = true
			break
		}
	}
	if !statusOK {
		t.Errorf("status = %d, want one of %v; body: %s", rec.Code, statusCodes, rec.Body.String())
	}

	var content interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &content); err != nil {
		t.Fatalf("response is not JSON: %v; body: %s", err, rec.Body.String())
	}
	switch want := data.(type) {
	case map[string]interface{}:
		if got, ok := content.(map[string]interface{}); ok {
			AssertMapContains(t, got, want)
			return
		}
	case []interface{}:
		if got, ok := content.([]interface{}); ok {
			AssertListContains(t, got, want)
			return
		}
	}
	if !reflect.DeepEqual(content, data) {
		t.Errorf("body = %v, want %v", content, data)
	}
}
