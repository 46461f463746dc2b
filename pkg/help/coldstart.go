package help

const ColdstartYAML = `# wordstat Quick Start

inputs:
  documents: "Plain text (UTF-8) or HTML files, one label each"
  word_list: "One batch of query words per line; line number names the charts"
  mask: "Silhouette image; white areas stay free of words"

outputs:
  per_line: "{label} - Frecuencias - {line}.png, {label} - Dispersión - {line}.png"
  per_document: "{label} - WordCloud.png"
  manifest: "summary.yaml"

commands:
  write_config: |
    wordstat init > wordstat.yaml

  full_run: |
    wordstat run --config wordstat.yaml

  create_output_dir: |
    wordstat run --mkdir --output-dir imágenes

  quick_count: |
    wordstat count --doc "Constituciones/Constitución 1991.txt" --words "paz justicia" --positions

  with_history: |
    wordstat run --history-db wordstat.db
    wordstat history --db wordstat.db
    wordstat history --db wordstat.db --run 3

notes:
  - "Query words are matched exactly; write them lowercase"
  - "A word repeated on several lines keeps its last count in the word cloud"
  - "Blank word-list lines are skipped but still count for numbering"
`
