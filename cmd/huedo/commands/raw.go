package commands

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/wsmith/huedo/internal/errors"
	"github.com/wsmith/huedo/pkg/hue"
)

// resolveMethod maps a user-supplied HTTP verb onto the supported set.
func resolveMethod(method string) (string, error) {
	switch method {
	case "GET", "get":
		return http.MethodGet, nil
	case "POST", "post":
		return http.MethodPost, nil
	case "PUT", "put":
		return http.MethodPut, nil
	case "DELETE", "delete":
		return http.MethodDelete, nil
	default:
		return "", errors.InvalidInputf("unsupported method %q (expected GET, POST, PUT or DELETE)", method)
	}
}

// newRawCommand creates the raw command, an escape hatch that sends an
// arbitrary request to the bridge and prints the JSON response verbatim.
func newRawCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "raw <fragment> [method] [json_body]",
		Short: "Send a raw request to the bridge API",
		Long: `Send a raw request to the bridge API.

The fragment is appended to the authenticated base URL
(https://<ip>/api/<user>/). The method defaults to GET and the body,
when given, must be valid JSON. The response is printed as-is.`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cmd.Context().Value(ClientContextKey).(hue.ClientInterface)

			method := http.MethodGet
			if len(args) > 1 {
				var err error
				if method, err = resolveMethod(args[1]); err != nil {
					return err
				}
			}

			var body any
			if len(args) > 2 {
				if err := json.Unmarshal([]byte(args[2]), &body); err != nil {
					return errors.InvalidInputf("body must be valid JSON: %v", err)
				}
			}

			res, err := c.Call(cmd.Context(), method, args[0], body)
			if err != nil {
				return fmt.Errorf("bridge call failed: %w", err)
			}

			fmt.Println(string(res))
			return nil
		},
	}
}
