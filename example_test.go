package scriptsync_test

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/scriptsync/pkg/domain"
	"github.com/aretw0/scriptsync/pkg/identity"
	"github.com/aretw0/scriptsync/pkg/txkey"
)

// Example shows the two transforms applied to every script: uid stamping,
// then the translation key walk with splicing.
func Example() {
	script := map[string]any{
		"name": "Root",
		"steps": []any{
			map[string]any{"say": "שלום", "wait": map[string]any{"variable": "x"}},
		},
	}

	stamped, err := identity.Assign(script, "src/user/script.yaml")
	if err != nil {
		panic(err)
	}
	fmt.Println("stamped:", stamped.Stamped)

	for e := range txkey.Walk(stamped.Tree, txkey.Options{Fields: []string{"say"}}) {
		fmt.Println(e.Key, e.Text)
	}

	translated, err := txkey.Apply(stamped.Tree, txkey.Options{
		Fields:       []string{"say"},
		Translations: domain.Translations{"root/50/f2": {"en": "Hello"}},
	})
	if err != nil {
		panic(err)
	}
	step := translated.Tree.(map[string]any)["steps"].([]any)[0].(map[string]any)
	out, _ := json.Marshal(step["say"])
	fmt.Println(string(out))

	// Output:
	// stamped: 2
	// root/50/f2 שלום
	// {".tx":{"_":"שלום","en":"Hello"}}
}
