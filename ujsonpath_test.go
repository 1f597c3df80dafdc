package ujsonpath

import (
	"reflect"
	"sync"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/LuizArmesto/ujsonpath/eval"
)

const storeYAML = `
store:
  book:
    - author: Nigel Rees
      price: 8.95
    - author: Evelyn Waugh
      price: 12.99
    - author: Herman Melville
      price: 8.99
    - author: J. R. R. Tolkien
      price: 22.99
  bicycle:
    color: red
`

func TestFind(t *testing.T) {
	var doc any
	if err := yaml.Unmarshal([]byte(storeYAML), &doc); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	matches, err := Find("store.book[1:-1].author", doc)
	if err != nil {
		t.Fatal(err)
	}
	want := []any{"Evelyn Waugh", "Herman Melville"}
	if got := Values(matches); !reflect.DeepEqual(got, want) {
		t.Errorf("Find = %v, want %v", got, want)
	}
}

func TestMustParse(t *testing.T) {
	p := MustParse("store.bicycle.color")
	if len(p.Nodes) != 3 {
		t.Errorf("MustParse: %d nodes, want 3", len(p.Nodes))
	}
	defer func() {
		if recover() == nil {
			t.Error("MustParse([1:2:3]): expected panic")
		}
	}()
	MustParse("[1:2:3]")
}

func TestCompiledPathReuse(t *testing.T) {
	var doc any
	if err := yaml.Unmarshal([]byte(storeYAML), &doc); err != nil {
		t.Fatal(err)
	}
	p := MustParse("store.bicycle.color")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			matches, err := eval.Find(p, doc)
			if err != nil {
				t.Errorf("concurrent find: %v", err)
				return
			}
			if len(matches) != 1 || matches[0].Value != "red" {
				t.Errorf("concurrent find = %v, want [red]", matches)
			}
		}()
	}
	wg.Wait()
}
