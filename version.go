package digit

// Version is the plugin release reported in Metadata and by the CLI.
const Version = "0.0.1"
