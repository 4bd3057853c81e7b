package sqlinline

const QStatsCountUsers = `--sql f125f079-8c83-4a53-adad-8049b2966873
select count(*) from users;
`

const QStatsCountIssues = `--sql 8bf9f35f-5c8e-4ffc-a9c5-e96fa60a8d42
select count(*) from issues;
`

const QStatsCountResolved = `--sql 5c7119d0-c1f7-4f78-a750-a0060cb36e66
select count(*) from issues where status = 'Resolved';
`

const QStatsCountContributions = `--sql 4f4bb6a7-9be7-4f2d-9c3e-2f6f6f9f0a11
select count(*) from contributions;
`

const QStatsSumFunds = `--sql 2a1de0c3-55d1-4aa2-8f3e-6bb0a4c7f230
select coalesce(sum(amount), 0) from contributions;
`

const QStatsCategoryCounts = `--sql 9e2f63b1-3c44-4d0a-b0d7-51b3e87a6c4d
select coalesce(nullif(category, ''), 'Other') as category, count(*)
from issues
group by 1
order by 2 desc, 1;
`
