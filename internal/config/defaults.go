package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultSkeletonPath is the template copied at the top of every emitted unit
	DefaultSkeletonPath = "test/.test_skeleton.c"
	// DefaultInterfacePath is the test interface listing
	DefaultInterfacePath = "test/hashtable_test.h"
	// DefaultOutputPath is where the emitted unit is written
	DefaultOutputPath = "test/.test_impl.c"
	// DefaultSuiteTrigger marks a line as a suite boundary
	DefaultSuiteTrigger = "SUITE"
	// DefaultSuite is the suite tests belong to before the first marker
	DefaultSuite = "general"
	// DefaultReturnType is the boolean-like return type of test declarations
	DefaultReturnType = "bool"
	// DefaultSuiteLogger is the skeleton routine announcing a suite
	DefaultSuiteLogger = "log_suite_start"
	// DefaultRecorder is the skeleton routine recording one test result
	DefaultRecorder = "run_test_and_print"
	// DefaultStatsPrinter is the skeleton routine printing cumulative stats
	DefaultStatsPrinter = "print_cumulative_stats"
	// DefaultInterfaceSuffix identifies listing files when scanning a directory
	DefaultInterfaceSuffix = "_test.h"
	// DefaultReportDir is the directory holding the generation report
	DefaultReportDir = ".htgen"
	// DefaultReportFile is the generation report file name
	DefaultReportFile = "generation.json"
	// DefaultConfigName is the config file name looked up in the project dir
	DefaultConfigName = "htgen"
	// EnvPrefix prefixes every environment override
	EnvPrefix = "HTGEN"
)

// DefaultPathsToIgnore are the default directories to ignore when scanning for listings
var DefaultPathsToIgnore = []string{
	"vendor",
	"node_modules",
	"build",
	"bin",
	"obj",
}
