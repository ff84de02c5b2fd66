// Command inspect dumps the bot's badger store for debugging: the
// participant roster and the recent round history, without going
// through the bot process.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"brewbot/domain"
	"brewbot/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", "./badger", "Path to badger DB")
	prefix := flag.String("prefix", "participant:", "Prefix to scan (participant:, offer:, part:)")
	flag.Parse()

	// Read-only + BypassLockGuard so the running bot keeps its lock.
	opts := badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.ERROR)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	color.Bold.Printf("Scanning %q in %s\n\n", *prefix, *dbPath)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	switch *prefix {
	case "participant:":
		table.SetHeader([]string{"ID", "Username", "Preference", "Brewed", "Received", "Consumed", "Rounds", "Rank", "Deleted"})
	case "offer:":
		table.SetHeader([]string{"Key", "Offer", "Server", "At"})
	default:
		table.SetHeader([]string{"Key", "Value"})
	}

	rows := 0
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())

			err := item.Value(func(v []byte) error {
				table.Append(toRow(*prefix, key, v))
				rows++
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal("Scan failed: ", err)
	}

	table.Render()
	fmt.Println()
	color.Green.Printf("%d entries\n", rows)
}

func toRow(prefix, key string, val []byte) []string {
	switch prefix {
	case "participant:":
		var p domain.Participant
		if err := json.Unmarshal(val, &p); err != nil {
			return []string{key, "unreadable: " + err.Error()}
		}
		return []string{
			p.ID, p.Username, p.Preference,
			strconv.Itoa(p.Brewed), strconv.Itoa(p.Received),
			strconv.Itoa(p.Consumed), strconv.Itoa(p.Rounds),
			strconv.Itoa(p.Rank), strconv.FormatBool(p.Deleted),
		}
	case "offer:":
		var o repositories.Offer
		if err := json.Unmarshal(val, &o); err != nil {
			return []string{key, "unreadable: " + err.Error(), "", ""}
		}
		return []string{key, o.ID[:8], o.ServerID, o.At.Format("2006-01-02 15:04:05")}
	default:
		return []string{key, string(val)}
	}
}
