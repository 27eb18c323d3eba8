package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Thabuki/karaoke-picker/catalog"

	"github.com/pborman/getopt/v2"
)

var g = struct {
	db      string // database path
	in      string // TSV file to import
	region  string // region filter
	query   string // search query
	link    string // share link to resolve
	base    string // base URL for -S
	ids     []int  // songs to select
	letters bool   // print index letters
}{
	region: catalog.All,
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	getopt.PrintUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	fmt.Println("Karaoke song picker")
	getopt.PrintUsage(os.Stdout)
	fmt.Print(`
With -i, songs are imported from a tab separated file with the columns
id, code, title, artist and country ("-" for standard input).  With -l,
the songs selected by a share link are listed.  With -S, the share link
for the given songs is printed.  Otherwise the catalog is listed,
filtered by -r and -q.
`)
	os.Exit(0)
}

// idList is a comma separated list of song IDs.
type idList []int

func (l *idList) String() string {
	s := make([]string, len(*l))
	for i, id := range *l {
		s[i] = strconv.Itoa(id)
	}
	return strings.Join(s, ",")
}

func (l *idList) Set(s string, _ getopt.Option) error {
	for _, f := range strings.Split(s, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || id <= 0 {
			return fmt.Errorf("%q: bad song ID", f)
		}
		*l = append(*l, id)
	}
	return nil
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(&g.db, 'd', "song database", "file").Mandatory()
	getopt.Flag(&g.in, 'i', "import songs from a TSV file", "file")
	getopt.EnumVar(&g.region, 'r',
		[]string{catalog.All, catalog.Nacional, catalog.Internacional},
		"list only songs from region", "region")
	getopt.Flag(&g.query, 'q', "list only songs whose title, "+
		"artist or code contains the query", "query")
	getopt.Flag(&g.letters, 'L', "print index letters of the listed artists")
	getopt.Flag(&g.link, 'l', "list the songs selected by a share link", "link")
	getopt.Flag((*idList)(&g.ids), 'S', "print the share link "+
		"selecting the given songs", "id,...")
	getopt.Flag(&g.base, 'u', "base URL of the song picker for -S", "url")
	getopt.Parse()
	if getopt.NArgs() != 0 {
		usage()
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()

	st, err := catalog.Open(g.db)
	if err != nil {
		log.Fatalln(err)
	}
	defer st.Close()

	if g.in != "" {
		if err := importTSV(st, g.in); err != nil {
			st.Close()
			log.Fatalln(err)
		}
	}
	c, err := st.Load()
	if err != nil {
		st.Close()
		log.Fatalln(err)
	}

	w := bufio.NewWriter(os.Stdout)
	switch {
	case len(g.ids) != 0:
		sel := catalog.NewSelection(c)
		for _, id := range g.ids {
			if !sel.Select(id) {
				log.Printf("song %d: not in catalog", id)
			}
		}
		fmt.Fprintln(w, sel.Link(g.base))
	case g.link != "":
		sel := catalog.NewSelection(c)
		if err := sel.Load(g.link); err != nil {
			st.Close()
			log.Fatalln(err)
		}
		list(w, sel.Songs())
	case g.in == "" || getopt.IsSet('r') || getopt.IsSet('q') || g.letters:
		songs := catalog.Filter(c.Songs(), g.region, g.query)
		if g.letters {
			fmt.Fprintln(w, strings.Join(catalog.Letters(songs), " "))
		} else {
			list(w, songs)
		}
	}
	if err := w.Flush(); err != nil {
		st.Close()
		log.Fatalln(err)
	}
}

func importTSV(st *catalog.Store, fn string) error {
	var r io.Reader = os.Stdin
	if fn != "-" {
		f, err := os.Open(fn)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	songs, err := catalog.ReadTSV(r)
	if err != nil {
		return fmt.Errorf("%s: %w", fn, err)
	}
	if err := st.Put(songs...); err != nil {
		return err
	}
	log.Printf("imported %d songs", len(songs))
	return nil
}

func list(w io.Writer, songs []catalog.Song) {
	for _, s := range songs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			s.ID, s.Code, s.Title, s.Artist, s.Region())
	}
}
