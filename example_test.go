package itemquery_test

import (
	"fmt"

	"github.com/hupe1980/itemquery"
	"github.com/hupe1980/itemquery/item"
	"github.com/hupe1980/itemquery/setdb"
	"github.com/hupe1980/itemquery/testutil"
)

func Example() {
	fx := testutil.NewFixture(testutil.Item{
		Ref: "item:18832",
		Info: item.Info{
			Name:      "Brutality Blade",
			Type:      "Weapon",
			SubType:   "One-Handed Swords",
			EquipSlot: "Main Hand",
			Quality:   4,
			Level:     70,
		},
		Tooltip: []string{"Brutality Blade", "Binds when picked up"},
	})

	eng, err := itemquery.New(
		itemquery.WithItemInfo(fx),
		itemquery.WithTooltip(fx),
		itemquery.WithSetProvider(setdb.NewStatic(map[string][]uint32{
			"Tank Gear": {18832},
		})),
	)
	if err != nil {
		panic(err)
	}

	fmt.Println(eng.Matches("item:18832", "blade&q>=epic"))
	fmt.Println(eng.Matches("item:18832", "lvl>70"))
	fmt.Println(eng.Matches("item:18832", "bop|boe"))
	fmt.Println(eng.Matches("item:18832", "s:tank"))
	// Output:
	// true
	// false
	// true
	// true
}
