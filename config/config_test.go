package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Koatty/koatty-graphql/typegen"
)

func TestLoad(t *testing.T) {
	type want struct {
		err        bool
		errMessage string
		config     *Config
	}

	tests := []struct {
		name string
		file string
		want want
	}{
		{
			name: "config does not exist",
			file: "doesnotexist.yml",
			want: want{
				err: true,
			},
		},
		{
			name: "malformed config",
			file: "testdata/cfg/malformedconfig.yml",
			want: want{
				err:        true,
				errMessage: "unable to parse config",
			},
		},
		{
			name: "'schema' not specified",
			file: "testdata/cfg/no_schema.yml",
			want: want{
				err:        true,
				errMessage: "'schema' not specified. Use schema to point at your SDL files",
			},
		},
		{
			name: "unknown keys",
			file: "testdata/cfg/unknownkeys.yml",
			want: want{
				err:        true,
				errMessage: "unknown field",
			},
		},
		{
			name: "minimal",
			file: "testdata/cfg/minimal.yml",
			want: want{
				config: &Config{
					SchemaFilename: StringList{"testdata/schema/user.graphql"},
				},
			},
		},
		{
			name: "full generate options",
			file: "testdata/cfg/generate.yml",
			want: want{
				config: &Config{
					SchemaFilename: StringList{
						"testdata/schema/post.graphql",
						"testdata/schema/user.graphql",
					},
					Generate: &GenerateConfig{
						OutputDir:        "./generated",
						Prefix:           "I",
						Suffix:           "Model",
						UseEnumType:      true,
						UseInterfaceType: true,
						StrictNullChecks: true,
					},
					Scalars: map[string]string{"Date": "Date"},
				},
			},
		},
		{
			name: "doublestar glob walks subdirectories",
			file: "testdata/cfg/glob.yml",
			want: want{
				config: &Config{
					SchemaFilename: StringList{
						"testdata/schema/nested/role.graphql",
						"testdata/schema/post.graphql",
						"testdata/schema/user.graphql",
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.file)
			if tt.want.err {
				if err == nil {
					t.Fatal("expected an error")
				}
				if tt.want.errMessage != "" && !strings.Contains(err.Error(), tt.want.errMessage) {
					t.Errorf("error = %q, want it to contain %q", err.Error(), tt.want.errMessage)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			normalizeFilenames(cfg)
			if diff := cmp.Diff(tt.want.config, cfg); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// filepath.Walk and Glob return platform separators; compare with slashes.
func normalizeFilenames(cfg *Config) {
	for i, filename := range cfg.SchemaFilename {
		cfg.SchemaFilename[i] = filepath.ToSlash(filename)
	}
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	t.Setenv("KOATTY_TEST_PREFIX", "Gen")

	cfg, err := Load("testdata/cfg/envexpand.yml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Generate == nil || cfg.Generate.Prefix != "Gen" {
		t.Errorf("prefix = %+v, want %q", cfg.Generate, "Gen")
	}
}

func TestGenerateConfig_Options(t *testing.T) {
	t.Parallel()

	var nilConfig *GenerateConfig
	if diff := cmp.Diff(&typegen.Options{}, nilConfig.Options()); diff != "" {
		t.Errorf("nil config should give default options (-want +got):\n%s", diff)
	}

	got := (&GenerateConfig{
		OutputDir:        "out",
		Prefix:           "I",
		Suffix:           "Model",
		UseEnumType:      true,
		StrictNullChecks: true,
	}).Options()
	want := &typegen.Options{
		OutputDir:        "out",
		Prefix:           "I",
		Suffix:           "Model",
		UseEnumType:      true,
		StrictNullChecks: true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Options() mismatch (-want +got):\n%s", diff)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	start := filepath.Join("testdata", "findcfg", "sub", "dir")

	cfg, err := FindConfigFile(start, DefaultFilenames)
	if err != nil {
		t.Fatalf("FindConfigFile() error = %v", err)
	}
	if !strings.HasSuffix(filepath.ToSlash(cfg), "testdata/findcfg/.koatty-graphql.yml") {
		t.Errorf("FindConfigFile() = %q, want the closest parent config", cfg)
	}
}

func TestFindConfigFile_NotFound(t *testing.T) {
	_, err := FindConfigFile(t.TempDir(), DefaultFilenames)
	if err == nil {
		t.Fatal("expected an error when no config exists in any parent")
	}
}

func TestStringList_Has(t *testing.T) {
	t.Parallel()

	list := StringList{"a.graphql", "b.graphql"}
	if !list.Has("a.graphql") {
		t.Error("Has() should find an existing entry")
	}
	if list.Has("c.graphql") {
		t.Error("Has() should not find a missing entry")
	}
}
