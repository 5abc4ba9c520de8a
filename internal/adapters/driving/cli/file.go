package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
)

var (
	fileName      string
	fileOverwrite bool
	fileDir       string
)

var fileCmd = &cobra.Command{
	Use:   "file",
	Short: "Manage file attachments",
	Long: `List, upload, download and delete files attached to ChurchTools objects.

A target is given as domain type and ID, e.g. "song_arrangement 42".
Domain types: ` + strings.Join(domain.FileDomainTypes, ", ") + `, wiki_<n>.`,
}

var fileListCmd = &cobra.Command{
	Use:   "list [domain-type] [domain-id]",
	Short: "List the files of an object",
	Args:  cobra.ExactArgs(2),
	RunE:  runFileList,
}

var fileUploadCmd = &cobra.Command{
	Use:   "upload [path] [domain-type] [domain-id]",
	Short: "Upload a file",
	Long: `Upload a local file. With --overwrite an existing file of the same
name is deleted first.

Example:
  churchtools file upload ./lead.pdf song_arrangement 42 --overwrite`,
	Args: cobra.ExactArgs(3),
	RunE: runFileUpload,
}

var fileDownloadCmd = &cobra.Command{
	Use:   "download [name] [domain-type] [domain-id]",
	Short: "Download a file",
	Args:  cobra.ExactArgs(3),
	RunE:  runFileDownload,
}

var fileDeleteCmd = &cobra.Command{
	Use:   "delete [domain-type] [domain-id]",
	Short: "Delete files of an object",
	Long: `Delete all files of an object, or only the one given with --name.

Deleting a single file re-uploads all other files of the object.`,
	Args: cobra.ExactArgs(2),
	RunE: runFileDelete,
}

func init() {
	fileUploadCmd.Flags().StringVar(&fileName, "name", "", "file name on the server (default: local name)")
	fileUploadCmd.Flags().BoolVar(&fileOverwrite, "overwrite", false, "replace a file of the same name")
	fileDownloadCmd.Flags().StringVarP(&fileDir, "dir", "d", ".", "target directory")
	fileDeleteCmd.Flags().StringVar(&fileName, "name", "", "delete only this file")

	fileCmd.AddCommand(fileListCmd)
	fileCmd.AddCommand(fileUploadCmd)
	fileCmd.AddCommand(fileDownloadCmd)
	fileCmd.AddCommand(fileDeleteCmd)
	rootCmd.AddCommand(fileCmd)
}

func parseFileDomain(domainType, id string) (domain.FileDomain, error) {
	target := domain.FileDomain{Type: domainType, Identifier: id}
	if !target.IsValid() {
		return target, fmt.Errorf("invalid file domain: %s %s", domainType, id)
	}
	return target, nil
}

func runFileList(cmd *cobra.Command, args []string) error {
	if fileService == nil {
		return errors.New("file service not configured")
	}
	target, err := parseFileDomain(args[0], args[1])
	if err != nil {
		return err
	}

	files, err := fileService.List(cmd.Context(), target)
	if err != nil {
		return fmt.Errorf("failed to list files: %w", err)
	}
	if len(files) == 0 {
		cmd.Println("No files.")
		return nil
	}

	rows := make([][]string, len(files))
	for i, f := range files {
		rows[i] = []string{strconv.Itoa(f.ID), f.Name, strconv.FormatInt(f.Size, 10)}
	}
	cmd.Println(renderTable([]string{"ID", "Name", "Size"}, rows))
	return nil
}

func runFileUpload(cmd *cobra.Command, args []string) error {
	if fileService == nil {
		return errors.New("file service not configured")
	}
	target, err := parseFileDomain(args[1], args[2])
	if err != nil {
		return err
	}

	if err := fileService.Upload(cmd.Context(), args[0], target, fileName, fileOverwrite); err != nil {
		return fmt.Errorf("failed to upload %s: %w", args[0], err)
	}
	cmd.Printf("Uploaded %s\n", args[0])
	return nil
}

func runFileDownload(cmd *cobra.Command, args []string) error {
	if fileService == nil {
		return errors.New("file service not configured")
	}
	target, err := parseFileDomain(args[1], args[2])
	if err != nil {
		return err
	}

	path, err := fileService.Download(cmd.Context(), args[0], target, fileDir)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", args[0], err)
	}
	cmd.Printf("Saved %s\n", path)
	return nil
}

func runFileDelete(cmd *cobra.Command, args []string) error {
	if fileService == nil {
		return errors.New("file service not configured")
	}
	target, err := parseFileDomain(args[0], args[1])
	if err != nil {
		return err
	}

	if err := fileService.Delete(cmd.Context(), target, fileName); err != nil {
		return fmt.Errorf("failed to delete files: %w", err)
	}
	if fileName != "" {
		cmd.Printf("Deleted %s\n", fileName)
	} else {
		cmd.Printf("Deleted all files of %s %s\n", target.Type, target.Identifier)
	}
	return nil
}
