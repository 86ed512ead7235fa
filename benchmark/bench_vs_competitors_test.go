package benchmark_test

import (
	"flag"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/urfave/cli/v2"

	"github.com/dzonerzy/go-args/args"
)

// Benchmark the classic logging/port/directory command line.
// Every parser declares -l (bool), -p (int) and -d (string) and parses the
// same short-flag list, including one trailing positional argument.

var simpleArgs = []string{"-l", "-p", "9000", "-d", "/var/log", "extra"}

func BenchmarkSimpleFlags_GoArgs(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		a, err := args.New("l,p#,d*", simpleArgs)
		if err != nil {
			b.Fatal(err)
		}
		if a.MustGetInt('p', 0) != 9000 {
			b.Fatal("port not parsed")
		}
		a.Release()
	}
}

func BenchmarkSimpleFlags_Pflag(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
		fs.SetOutput(io.Discard)
		fs.SetInterspersed(false)
		logging := fs.BoolP("logging", "l", false, "")
		port := fs.IntP("port", "p", 8080, "")
		fs.StringP("dir", "d", ".", "")
		if err := fs.Parse(simpleArgs); err != nil {
			b.Fatal(err)
		}
		if !*logging || *port != 9000 {
			b.Fatal("flags not parsed")
		}
	}
}

func BenchmarkSimpleFlags_Cobra(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{
			Use:  "bench",
			Args: cobra.ArbitraryArgs,
			Run:  func(_ *cobra.Command, _ []string) {},
		}
		rootCmd.Flags().BoolP("logging", "l", false, "Logging")
		rootCmd.Flags().IntP("port", "p", 8080, "Port")
		rootCmd.Flags().StringP("dir", "d", ".", "Directory")
		rootCmd.SetArgs(simpleArgs)
		_ = rootCmd.Execute()
	}
}

func BenchmarkSimpleFlags_Urfave(b *testing.B) {
	argv := append([]string{"bench"}, simpleArgs...)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "l", Usage: "Logging"},
				&cli.IntFlag{Name: "p", Value: 8080, Usage: "Port"},
				&cli.StringFlag{Name: "d", Value: ".", Usage: "Directory"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(argv)
	}
}

func BenchmarkSimpleFlags_Stdlib(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fs := flag.NewFlagSet("bench", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		logging := fs.Bool("l", false, "")
		port := fs.Int("p", 8080, "")
		fs.String("d", ".", "")
		if err := fs.Parse(simpleArgs); err != nil {
			b.Fatal(err)
		}
		if !*logging || *port != 9000 {
			b.Fatal("flags not parsed")
		}
	}
}

// Benchmark clustered short flags (-lvq -p 80).
// The stdlib flag package cannot cluster, so it is left out.

var clusterArgs = []string{"-lvq", "-p", "80"}

func BenchmarkClustered_GoArgs(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		a, err := args.New("l,v,q,p#", clusterArgs)
		if err != nil {
			b.Fatal(err)
		}
		if !a.Has('q') {
			b.Fatal("cluster not parsed")
		}
		a.Release()
	}
}

func BenchmarkClustered_Pflag(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
		fs.SetOutput(io.Discard)
		fs.BoolP("logging", "l", false, "")
		fs.BoolP("verbose", "v", false, "")
		quiet := fs.BoolP("quiet", "q", false, "")
		fs.IntP("port", "p", 8080, "")
		if err := fs.Parse(clusterArgs); err != nil {
			b.Fatal(err)
		}
		if !*quiet {
			b.Fatal("cluster not parsed")
		}
	}
}

func BenchmarkClustered_Urfave(b *testing.B) {
	argv := append([]string{"bench"}, clusterArgs...)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name:                   "bench",
			UseShortOptionHandling: true,
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "l"},
				&cli.BoolFlag{Name: "v"},
				&cli.BoolFlag{Name: "q"},
				&cli.IntFlag{Name: "p", Value: 8080},
			},
			HideVersion: true,
			Action:      func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(argv)
	}
}

// Benchmark repeatable list and map flags.

var repeatedArgs = []string{"-x", "alpha", "-x", "beta", "-x", "gamma", "-f", "k1:v1,k2:v2"}

func BenchmarkRepeated_GoArgs(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		a, err := args.New("x[*],f&", repeatedArgs)
		if err != nil {
			b.Fatal(err)
		}
		if list, _ := a.GetStringSlice('x'); len(list) != 3 {
			b.Fatal("list not parsed")
		}
		a.Release()
	}
}

func BenchmarkRepeated_Pflag(b *testing.B) {
	pflagArgs := []string{"-x", "alpha", "-x", "beta", "-x", "gamma", "-f", "k1=v1,k2=v2"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
		fs.SetOutput(io.Discard)
		list := fs.StringArrayP("item", "x", nil, "")
		fs.StringToStringP("fields", "f", nil, "")
		if err := fs.Parse(pflagArgs); err != nil {
			b.Fatal(err)
		}
		if len(*list) != 3 {
			b.Fatal("list not parsed")
		}
	}
}

func BenchmarkRepeated_Urfave(b *testing.B) {
	argv := append([]string{"bench"}, repeatedArgs...)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.StringSliceFlag{Name: "x"},
				&cli.StringFlag{Name: "f"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(argv)
	}
}
